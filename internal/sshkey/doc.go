// Package sshkey locates a named private key under the user's SSH directory.
//
// Only the existence of the key file is checked. Its permissions, readability
// and content are left to ssh itself.
package sshkey
