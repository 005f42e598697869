package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/gorm"

	infraRepo "github.com/fadehouse/barberpos/internal/infra/repository"
	"github.com/fadehouse/barberpos/internal/models"
	ucSale "github.com/fadehouse/barberpos/internal/usecase/sale"
)

func posRouter(db *gorm.DB) *httptest.Server {
	repo := infraRepo.NewSaleGormRepository(db)
	checkout := ucSale.NewCheckout(repo, nil, "Asia/Jakarta")
	h := NewPosHandler(checkout)

	r := newTestRouter(authAs(7, models.RoleCashier))
	r.POST("/pos/checkout", h.Checkout)
	return httptest.NewServer(r)
}

func seedPosData(t *testing.T, db *gorm.DB) (models.Customer, models.Service, models.Service) {
	t.Helper()

	cashier := models.User{Name: "Rina", Email: "rina@test", PasswordHash: "x", Role: models.RoleCashier}
	if err := db.Create(&cashier).Error; err != nil {
		t.Fatalf("cashier: %v", err)
	}

	customer := models.Customer{Name: "Budi", Phone: "0812", VisitCount: 3}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}

	haircut := models.Service{Name: "Haircut", Price: 50000}
	shave := models.Service{Name: "Shave", Price: 20000}
	if err := db.Create(&haircut).Error; err != nil {
		t.Fatalf("haircut: %v", err)
	}
	if err := db.Create(&shave).Error; err != nil {
		t.Fatalf("shave: %v", err)
	}

	return customer, haircut, shave
}

func TestCheckoutEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	customer, haircut, shave := seedPosData(t, db)

	srv := posRouter(db)
	defer srv.Close()

	body := `{
		"customer_id": ` + jsonID(customer.ID) + `,
		"service_ids": [` + jsonID(haircut.ID) + `, ` + jsonID(shave.ID) + `],
		"payment_method": "cash",
		"tip_amount": 5000
	}`

	resp, err := http.Post(srv.URL+"/pos/checkout", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.StatusCode)
	}

	var receipt ucSale.Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}

	if receipt.TotalAmount != 75000 {
		t.Fatalf("expected total 75000 got %v", receipt.TotalAmount)
	}
	if len(receipt.Lines) != 2 {
		t.Fatalf("expected 2 receipt lines got %d", len(receipt.Lines))
	}

	var tx models.Transaction
	if err := db.First(&tx, receipt.TransactionID).Error; err != nil {
		t.Fatalf("transaction row: %v", err)
	}
	if tx.TotalAmount != 75000 || tx.Status != "completed" {
		t.Fatalf("unexpected transaction %+v", tx)
	}

	var items []models.TransactionService
	if err := db.Where("transaction_id = ?", tx.ID).Find(&items).Error; err != nil {
		t.Fatalf("line items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 line-item rows got %d", len(items))
	}

	var updated models.Customer
	if err := db.First(&updated, customer.ID).Error; err != nil {
		t.Fatalf("customer reload: %v", err)
	}
	if updated.VisitCount != 4 {
		t.Fatalf("expected visit count 4 got %d", updated.VisitCount)
	}
}

func TestCheckoutRejectedEmptyCartNoWrites(t *testing.T) {
	db := setupTestDB(t)
	customer, _, _ := seedPosData(t, db)

	srv := posRouter(db)
	defer srv.Close()

	body := `{"customer_id": ` + jsonID(customer.ID) + `, "service_ids": [], "payment_method": "cash"}`

	resp, err := http.Post(srv.URL+"/pos/checkout", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}

	var payload struct {
		Code string `json:"error_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Code != "empty_cart" {
		t.Fatalf("expected empty_cart got %q", payload.Code)
	}

	var count int64
	db.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejection must not write transactions, found %d", count)
	}
}

func TestCheckoutRejectedNoCustomerNoWrites(t *testing.T) {
	db := setupTestDB(t)
	_, haircut, _ := seedPosData(t, db)

	srv := posRouter(db)
	defer srv.Close()

	body := `{"service_ids": [` + jsonID(haircut.ID) + `], "payment_method": "cash"}`

	resp, err := http.Post(srv.URL+"/pos/checkout", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}

	var count int64
	db.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejection must not write transactions, found %d", count)
	}
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
