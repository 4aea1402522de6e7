package main

import (
	"expensetracker/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AuthUserModel{},
		model.ExpenseModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
