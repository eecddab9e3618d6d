package domain

// Имена коллекций (таблиц) хранилища документов
const (
	UsersCollection = "users"
	CarsCollection  = "cars"
)

// Поля документов
const (
	FieldID       = "_id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldBrand    = "brand"
	FieldName     = "name"
	FieldYear     = "year"
	FieldPrice    = "price"
)
