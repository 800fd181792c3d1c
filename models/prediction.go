package models

// Prediction is one scored event. Categorical fields are stored already
// decoded to display strings so the table reads as a report.
type Prediction struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Date         string `gorm:"column:date" json:"date"`
	DayOfWeek    string `gorm:"column:day_of_week" json:"day_of_week"`
	ProductName  string `gorm:"column:product_name" json:"product_name"`
	UnitPrice    int    `gorm:"column:unit_price" json:"unit_price"`
	QuantitySold int    `gorm:"column:quantity_sold" json:"quantity_sold"`
	StockOnHand  int    `gorm:"column:stock_on_hand" json:"stock_on_hand"`
	StockStatus  string `gorm:"column:stock_status" json:"stock_status"`
}

func (Prediction) TableName() string { return "predictions" }
