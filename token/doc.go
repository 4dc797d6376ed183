// Package token splits annotation bodies into classifier tokens.
package token
