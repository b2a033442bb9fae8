package storage

type Workshop struct {
	WorkshopID   int64  `json:"workshop_id"`
	WorkshopName string `json:"workshop_name"`
	WorkshopType string `json:"workshop_type"`
	StaffCount   int64  `json:"staff_count"`
}

type UpdateWorkshop struct {
	WorkshopName *string `json:"workshop_name,omitempty"`
	WorkshopType *string `json:"workshop_type,omitempty"`
	StaffCount   *int64  `json:"staff_count,omitempty"`
}

// ProductWorkshop — один производственный маршрут: продукт, цех и время
// нахождения продукта в цехе. Пара (продукт, цех) может повторяться.
type ProductWorkshop struct {
	ProductWorkshopID      int64   `json:"product_workshop_id"`
	ProductID              int64   `json:"product_id"`
	WorkshopID             int64   `json:"workshop_id"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
}

// ProductWorkshopView — маршрут с именами продукта и цеха для списка.
type ProductWorkshopView struct {
	ProductWorkshopID      int64   `json:"product_workshop_id"`
	ProductID              int64   `json:"product_id"`
	WorkshopID             int64   `json:"workshop_id"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
	ProductName            string  `json:"product_name"`
	WorkshopName           string  `json:"workshop_name"`
}

// WorkshopLeg — цех в составе маршрута конкретного продукта.
type WorkshopLeg struct {
	ProductWorkshopID      int64   `json:"product_workshop_id"`
	WorkshopID             int64   `json:"workshop_id"`
	WorkshopName           string  `json:"workshop_name"`
	WorkshopType           string  `json:"workshop_type"`
	StaffCount             int64   `json:"staff_count"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
}

type UpdateProductWorkshop struct {
	ProductID              *int64   `json:"product_id,omitempty"`
	WorkshopID             *int64   `json:"workshop_id,omitempty"`
	ManufacturingTimeHours *float64 `json:"manufacturing_time_hours,omitempty"`
}
