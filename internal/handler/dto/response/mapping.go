package response

import "github.com/jinzhu/copier"

// copier fails only on unsupported type pairs.
func copyFrom(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(err)
	}
}
