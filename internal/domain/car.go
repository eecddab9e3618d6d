package domain

// Car запись об автомобиле
// ID - непрозрачный идентификатор, выдаваемый хранилищем
type Car struct {
	ID    string
	Brand string
	Name  string
	Year  float64
	Price float64
}
