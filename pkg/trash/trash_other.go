//go:build !linux && !darwin

package trash

func moveToTrash(string) error {
	return ErrUnsupported
}
