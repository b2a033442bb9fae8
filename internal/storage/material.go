package storage

type ProductType struct {
	ProductTypeID   int64   `json:"product_type_id"`
	ProductTypeName string  `json:"product_type_name"`
	Coefficient     float64 `json:"coefficient"`
}

type MaterialType struct {
	MaterialTypeID   int64   `json:"material_type_id"`
	MaterialTypeName string  `json:"material_type_name"`
	LossPercentage   float64 `json:"loss_percentage"`
}

type UpdateProductType struct {
	ProductTypeName *string  `json:"product_type_name,omitempty"`
	Coefficient     *float64 `json:"coefficient,omitempty"`
}

type UpdateMaterialType struct {
	MaterialTypeName *string  `json:"material_type_name,omitempty"`
	LossPercentage   *float64 `json:"loss_percentage,omitempty"`
}
