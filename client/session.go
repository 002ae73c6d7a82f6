package client

import "context"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges the admin credentials for a session token and keeps it for
// later requests.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var res loginResponse
	err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return User{}, err
	}

	c.setToken(res.Token)
	return res.User, nil
}

// Logout drops the session locally. The token is stateless on the server
// side, forgetting it is all there is to do.
func (c *Client) Logout() {
	c.clearToken()
}

// Authenticated reports whether a session token is present. It does not
// verify the token against the server, an expired one surfaces as
// ErrUnauthorized on the next admin call.
func (c *Client) Authenticated() bool {
	return c.Token() != ""
}
