//go:build docvirt_debug

package docvirt

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
