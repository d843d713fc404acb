package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// UsesSSH reports whether git would reach url over ssh, the only transport
// that honors GIT_SSH_COMMAND.
func UsesSSH(url string) bool {
	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return false
	}
	return ep.Protocol == "ssh"
}

// CheckoutDir returns the directory git clone creates for url. An explicit
// dir wins; otherwise the last path segment of the URL is used without a
// trailing ".git", the same rule git applies.
func CheckoutDir(url, dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return "", fmt.Errorf("parse repository URL: %w", err)
	}

	p := strings.TrimRight(ep.Path, "/")
	p = strings.TrimSuffix(p, "/.git")
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexAny(p, "/:"); i >= 0 {
		p = p[i+1:]
	}
	p = strings.TrimSuffix(p, ".git")

	if p == "" || p == "." || p == ".." {
		return "", fmt.Errorf("cannot derive directory name from %q", url)
	}
	return p, nil
}

// HeadInfo describes the checked-out HEAD of a repository
type HeadInfo struct {
	Branch string
	Hash   string
}

// ReadHead opens the repository at path and reports its HEAD
func ReadHead(client Client, path string) (*HeadInfo, error) {
	repo, err := client.PlainOpen(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return headOf(repo)
}

func headOf(repo *git.Repository) (*HeadInfo, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}

	info := &HeadInfo{Hash: head.Hash().String()}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
