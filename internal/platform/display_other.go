//go:build !linux

package platform

func checkDisplay() error {
	return nil
}
