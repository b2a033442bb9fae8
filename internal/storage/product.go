package storage

type Product struct {
	ProductID           int64   `json:"product_id"`
	ProductTypeID       int64   `json:"product_type_id"`
	ProductName         string  `json:"product_name"`
	ArticleNumber       int64   `json:"article_number"`
	MinimumPartnerPrice float64 `json:"minimum_partner_price"`
	MaterialTypeID      int64   `json:"material_type_id"`
}

// ProductView — продукт вместе с именами типа продукции и материала,
// как его отдают списки и карточка. Время производства проставляет
// обработчик, в базе его нет.
type ProductView struct {
	ProductID              int64   `json:"product_id"`
	ArticleNumber          int64   `json:"article_number"`
	ProductName            string  `json:"product_name"`
	ProductTypeID          int64   `json:"product_type_id"`
	ProductType            string  `json:"product_type"`
	MaterialTypeID         int64   `json:"material_type_id"`
	MaterialType           string  `json:"material_type"`
	MinimumPartnerPrice    float64 `json:"minimum_partner_price"`
	ManufacturingTimeHours int64   `json:"manufacturing_time_hours"`
}

type UpdateProduct struct {
	ProductTypeID       *int64   `json:"product_type_id,omitempty"`
	ProductName         *string  `json:"product_name,omitempty"`
	ArticleNumber       *int64   `json:"article_number,omitempty"`
	MinimumPartnerPrice *float64 `json:"minimum_partner_price,omitempty"`
	MaterialTypeID      *int64   `json:"material_type_id,omitempty"`
}
