package generators

import (
	"github.com/google/uuid"
)

// UUID4 draws the uuid bytes from the seeded source so output is
// reproducible.
func UUID4(ctx Context, options []interface{}) (interface{}, error) {
	uuidBytes := make([]byte, 16)
	ctx.Faker.Rand.Read(uuidBytes)
	uuidBytes[6] = (uuidBytes[6] & 0x0f) | 0x40
	uuidBytes[8] = (uuidBytes[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(uuidBytes)
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}
