package create_case

// Request модель запроса на создание кейса
type Request struct {
	CorporateName string `json:"corporateName"` // Название компании
	StoreName     string `json:"storeName"`     // Название заведения
}
