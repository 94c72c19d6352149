// utils/jobid.go
package utils

import (
	"fmt"
	"math/rand"
)

// GenerateJobID returns a display id like "#tf4821". Ids are not checked
// for uniqueness and may collide.
func GenerateJobID() string {
	return fmt.Sprintf("#tf%d", 1000+rand.Intn(9000))
}
