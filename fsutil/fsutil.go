package fsutil

import (
	"fmt"
	"io"
	"os"

	"github.com/kbukum/execkit/echo"
)

func echoOp(op, details string) {
	echo.Operation(os.Stderr, echo.FSStyle(), op, details)
}

// Copy copies the contents and permission bits of the file from to the file
// to, creating or truncating it, and returns the number of bytes copied.
func Copy(from, to string) (int64, error) {
	echoOp("copy", from+" -> "+to)
	src, err := os.Open(from)
	if err != nil {
		return 0, err
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return 0, err
	}
	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	// The destination may have pre-existed with other permissions.
	return n, os.Chmod(to, info.Mode().Perm())
}

// Mkdir is os.Mkdir with the operation echoed.
func Mkdir(path string, perm os.FileMode) error {
	echoOp("mkdir", path)
	return os.Mkdir(path, perm)
}

// MkdirAll is os.MkdirAll with the operation echoed.
func MkdirAll(path string, perm os.FileMode) error {
	echoOp("mkdir_all", path)
	return os.MkdirAll(path, perm)
}

// Link is os.Link with the operation echoed.
func Link(oldname, newname string) error {
	echoOp("link", oldname+" -> "+newname)
	return os.Link(oldname, newname)
}

// Stat is os.Stat with the operation echoed.
func Stat(name string) (os.FileInfo, error) {
	echoOp("stat", name)
	return os.Stat(name)
}

// Lstat is os.Lstat with the operation echoed.
func Lstat(name string) (os.FileInfo, error) {
	echoOp("lstat", name)
	return os.Lstat(name)
}

// ReadFile is os.ReadFile with the operation echoed.
func ReadFile(name string) ([]byte, error) {
	echoOp("read_file", name)
	return os.ReadFile(name)
}

// ReadFileString reads the named file and returns its contents as a string.
func ReadFileString(name string) (string, error) {
	echoOp("read_file_string", name)
	b, err := os.ReadFile(name)
	return string(b), err
}

// ReadDir is os.ReadDir with the operation echoed.
func ReadDir(name string) ([]os.DirEntry, error) {
	echoOp("read_dir", name)
	return os.ReadDir(name)
}

// Remove is os.Remove with the operation echoed.
func Remove(name string) error {
	echoOp("remove", name)
	return os.Remove(name)
}

// RemoveAll is os.RemoveAll with the operation echoed.
func RemoveAll(path string) error {
	echoOp("remove_all", path)
	return os.RemoveAll(path)
}

// Rename is os.Rename with the operation echoed.
func Rename(oldpath, newpath string) error {
	echoOp("rename", oldpath+" -> "+newpath)
	return os.Rename(oldpath, newpath)
}

// Chmod is os.Chmod with the operation echoed.
func Chmod(name string, mode os.FileMode) error {
	echoOp("chmod", name)
	return os.Chmod(name, mode)
}

// WriteFile is os.WriteFile with the operation echoed.
func WriteFile(name string, data []byte, perm os.FileMode) error {
	echoOp("write_file", fmt.Sprintf("%d bytes -> %s", len(data), name))
	return os.WriteFile(name, data, perm)
}
