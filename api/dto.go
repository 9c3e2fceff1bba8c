package api

// registerRequest is the body of POST /auth/register. The password carries
// no rules on purpose: any string, including the empty one, is hashed and
// stored.
type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password"`
}

// loginRequest is the body of POST /auth/login. No validation tags: a
// missing username falls through to the unknown-user path so the response
// never reveals which part of the credentials was wrong.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registerResponse is returned on successful registration. The password
// hash never appears here.
type registerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// loginResponse carries the signed bearer token.
type loginResponse struct {
	Token string `json:"token"`
}
