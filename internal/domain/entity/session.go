package entity

// Session identidad autenticada; solo existe después de un login exitoso.
type Session struct {
	UserID      string
	DisplayName string
	Email       string
}
