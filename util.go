package pcfg

import (
	"log"
)

// checkAndFatal check err. If err != nil, trigger log.Fatal
func checkAndFatal(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// assert check exp, if exp == false, log the error and exit
func assert(exp bool, err error) {
	if !exp {
		log.Fatal(err)
	}
}
