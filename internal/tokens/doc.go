// Package tokens issues and verifies the stateless bearer tokens that
// authenticate API requests.
//
// Tokens are HS256-signed JWTs carrying the user identifier as the "sub"
// claim together with "iss", "iat", "exp" and a random "jti". Nothing is
// stored server-side: a token is valid until its expiry.
package tokens
