//go:build !linux && !darwin

package platform

func defaultInhibitor() []string {
	return nil
}
