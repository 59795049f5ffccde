package models

import "time"

// CatalogSnapshot is the document written by a catalog export.
type CatalogSnapshot struct {
	StoreID     string       `json:"storeId"`
	StoreName   string       `json:"storeName"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Billboards  []*Billboard `json:"billboards"`
	Categories  []*Category  `json:"categories"`
	Colors      []*Color     `json:"colors"`
	Sizes       []*Size      `json:"sizes"`
	Products    []*Product   `json:"products"`
}

type CatalogExport struct {
	Key       string         `json:"key"`
	URL       string         `json:"url"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Counts    map[string]int `json:"counts"`
}
