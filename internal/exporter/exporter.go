// Package exporter writes a filtered fact-table subset back out as an .xlsx
// workbook for download.
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FernandoGuns/Dash-Vendas/internal/model"
)

const sheetName = "Vendas"

var header = []interface{}{
	"Data da Venda",
	"Ordem de Compra",
	"ID Produto",
	"Produto",
	"Tipo do Produto",
	"Marca",
	"ID Cliente",
	"Nome Completo",
	"ID Loja",
	"Nome da Loja",
	"Qtd Vendida",
	"Preço Unitario",
	"Valor da Venda",
}

// WriteFact builds a workbook holding the given fact rows, one row per sale,
// with the derived line total in the last column.
func WriteFact(rows []model.FactRow) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, factCells(row)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// WriteFactFile writes the workbook to disk.
func WriteFactFile(rows []model.FactRow, path string) error {
	f, err := WriteFact(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save export %s: %w", path, err)
	}
	return nil
}

func factCells(row model.FactRow) *[]interface{} {
	var date interface{}
	if row.Date != nil {
		date = row.Date.Format("02/01/2006")
	}
	var price, total interface{}
	if row.UnitPrice != nil {
		price = *row.UnitPrice
	}
	if row.LineTotal != nil {
		total = *row.LineTotal
	}
	cells := []interface{}{
		date,
		row.OrderID,
		row.ProductID,
		row.ProductName,
		row.ProductType,
		row.Brand,
		row.CustomerID,
		row.CustomerName,
		row.StoreID,
		row.StoreName,
		row.Quantity,
		price,
		total,
	}
	return &cells
}
