package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/rizkyhp/gudangpro/internal/ledger"
)

type transactionResponse struct {
	ID           uuid.UUID   `json:"id"`
	Code         string      `json:"code"`
	DeliveryCode string      `json:"deliveryCode,omitempty"`
	Type         ledger.Type `json:"type"`
	ItemName     string      `json:"itemName"`
	Quantity     int64       `json:"quantity"`
	Price        int64       `json:"price"`
	Total        int64       `json:"total"`
	Date         time.Time   `json:"date"`
	Notes        string      `json:"notes,omitempty"`
	Customer     string      `json:"customer,omitempty"`
	Supplier     string      `json:"supplier,omitempty"`
}

type summaryResponse struct {
	TotalIn        int64 `json:"totalIn"`
	TotalOut       int64 `json:"totalOut"`
	TotalBuyValue  int64 `json:"totalBuyValue"`
	TotalSellValue int64 `json:"totalSellValue"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Code:         tx.Code,
		DeliveryCode: tx.DeliveryCode,
		Type:         tx.Type,
		ItemName:     tx.ItemName,
		Quantity:     tx.Quantity,
		Price:        tx.Price,
		Total:        tx.Total(),
		Date:         tx.Date,
		Notes:        tx.Notes,
		Customer:     tx.Customer,
		Supplier:     tx.Supplier,
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
