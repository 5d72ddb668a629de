package dto

// CredentialsForm is shared by the register and login forms.
type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
