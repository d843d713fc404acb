package git

import (
	"github.com/go-git/go-git/v5"
)

// RealClient implements Client using go-git
type RealClient struct{}

// NewClient creates a new RealClient
func NewClient() *RealClient {
	return &RealClient{}
}

// PlainOpen calls git.PlainOpen
func (c *RealClient) PlainOpen(path string) (*git.Repository, error) {
	return git.PlainOpen(path)
}
