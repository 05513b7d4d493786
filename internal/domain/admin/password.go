package admin

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// dummyHash is compared against when no admin matches so a miss costs the
// same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("reinsure-no-such-admin"), bcryptCost)

// HashPasswordIfChanged replaces the stored hash when plain is non-empty and
// does not already match it.
func HashPasswordIfChanged(a *Admin, plain string) error {
	if plain == "" {
		return nil
	}
	if a.PasswordHash != "" && CheckPassword(a.PasswordHash, plain) {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
