package services_test

import (
	"fmt"
	"testing"

	"quotedesk/internal/domain"
	"quotedesk/internal/services"
)

func demoCatalog() []domain.Product {
	return []domain.Product{
		{ID: "p1", CategoryID: "hygiene", Name: "Gel Hydroalcoolique 5L", Description: "Gel désinfectant pour les mains"},
		{ID: "p2", CategoryID: "it", Name: "Ramette Papier A4", Description: "Papier blanc 80g"},
		{ID: "p3", CategoryID: "hygiene", Name: "Détergent Multi-Surface", Description: "Nettoyant professionnel"},
		{ID: "p4", CategoryID: "workwear", Name: "Combinaison de Travail", Description: "Combinaison résistante"},
		{ID: "p5", CategoryID: "it", Name: "Cartouche Toner HP", Description: "Toner compatible"},
		{ID: "p6", CategoryID: "workwear", Name: "Chaussures de Sécurité", Description: "Coque acier"},
	}
}

func TestPageOfCategoryFilterKeepsOrder(t *testing.T) {
	view := services.PageOf(demoCatalog(), "", "hygiene", 1, 9)
	if view.TotalMatches != 2 || len(view.Products) != 2 {
		t.Fatalf("want exactly 2 hygiene products, got %+v", view)
	}
	if view.Products[0].ID != "p1" || view.Products[1].ID != "p3" {
		t.Fatalf("relative order not preserved: %s, %s", view.Products[0].ID, view.Products[1].ID)
	}
}

func TestPageOfSearchIsCaseInsensitiveSubstring(t *testing.T) {
	view := services.PageOf(demoCatalog(), "gel", "", 1, 9)
	if view.TotalMatches != 1 || view.Products[0].Name != "Gel Hydroalcoolique 5L" {
		t.Fatalf("want only the gel product, got %+v", view.Products)
	}

	// description matches too
	view = services.PageOf(demoCatalog(), "TONER", "", 1, 9)
	if view.TotalMatches != 1 || view.Products[0].ID != "p5" {
		t.Fatalf("want toner match via name/description, got %+v", view.Products)
	}
}

func TestPageOfEmptyFiltersMatchEverything(t *testing.T) {
	view := services.PageOf(demoCatalog(), "", "", 1, 9)
	if view.TotalMatches != 6 {
		t.Fatalf("empty filters should match all 6, got %d", view.TotalMatches)
	}
}

func TestPageOfIsIdempotent(t *testing.T) {
	a := services.PageOf(demoCatalog(), "a4", "it", 1, 9)
	b := services.PageOf(demoCatalog(), "a4", "it", 1, 9)
	if a.TotalMatches != b.TotalMatches || len(a.Products) != len(b.Products) {
		t.Fatalf("same inputs produced different views: %+v vs %+v", a, b)
	}
	for i := range a.Products {
		if a.Products[i].ID != b.Products[i].ID {
			t.Fatalf("result order changed between identical calls")
		}
	}
}

func TestPageOfSlicesCoverCollection(t *testing.T) {
	products := demoCatalog()
	const pageSize = 4
	first := services.PageOf(products, "", "", 1, pageSize)
	seen := 0
	for page := 1; page <= first.TotalPages; page++ {
		v := services.PageOf(products, "", "", page, pageSize)
		seen += len(v.Products)
	}
	if seen != len(products) {
		t.Fatalf("pages cover %d products, want %d", seen, len(products))
	}
}

func TestPageOfClampsOutOfRangePages(t *testing.T) {
	products := demoCatalog()
	const pageSize = 4 // 2 pages of 6

	v := services.PageOf(products, "", "", 0, pageSize)
	if v.Page != 1 || len(v.Products) == 0 {
		t.Fatalf("page 0 should clamp to 1, got page=%d len=%d", v.Page, len(v.Products))
	}
	v = services.PageOf(products, "", "", -3, pageSize)
	if v.Page != 1 {
		t.Fatalf("negative page should clamp to 1, got %d", v.Page)
	}
	v = services.PageOf(products, "", "", 99, pageSize)
	if v.Page != v.TotalPages || len(v.Products) == 0 {
		t.Fatalf("page 99 should clamp to last page, got page=%d/%d len=%d", v.Page, v.TotalPages, len(v.Products))
	}
}

func TestPageOfNoMatchesStillOnePage(t *testing.T) {
	v := services.PageOf(demoCatalog(), "introuvable", "", 7, 9)
	if v.TotalMatches != 0 || v.TotalPages != 1 || v.Page != 1 {
		t.Fatalf("empty result set should clamp to a single empty page, got %+v", v)
	}
	if len(v.Products) != 0 {
		t.Fatalf("expected empty slice, got %d products", len(v.Products))
	}
}

func TestPageOfLargerCollections(t *testing.T) {
	for _, n := range []int{1, 9, 10, 25} {
		var products []domain.Product
		for i := 0; i < n; i++ {
			products = append(products, domain.Product{ID: fmt.Sprintf("p%03d", i), Name: fmt.Sprintf("Produit %d", i)})
		}
		first := services.PageOf(products, "", "", 1, 9)
		seen := 0
		for page := 1; page <= first.TotalPages; page++ {
			seen += len(services.PageOf(products, "", "", page, 9).Products)
		}
		if seen != n {
			t.Fatalf("n=%d: pages cover %d products", n, seen)
		}
	}
}
