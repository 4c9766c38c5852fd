package bnmath

func disabled(*scope) error {
	return ErrDisabled
}
