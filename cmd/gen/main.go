package main

import (
	"stampcard/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.RestaurantLocationModel{},
		model.LoyaltyCardModel{},
		model.GeoTriggerLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
