package api

import "net/url"

// Admin is the authenticated administrator's profile.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// loginResponse is the token envelope returned by POST /auth/login.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AdminName   string `json:"admin_name"`
}

// Login exchanges credentials for a bearer token and the admin's
// display name. Unlike every other endpoint, login is form-encoded.
func (c *Client) Login(username, password string) (token, adminName string, err error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	var resp loginResponse
	if err := c.postForm("/auth/login", form, &resp); err != nil {
		return "", "", err
	}
	return resp.AccessToken, resp.AdminName, nil
}

// Me returns the profile behind the current bearer credential.
func (c *Client) Me() (*Admin, error) {
	var admin Admin
	if err := c.get("/auth/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
