//go:build cgo

// Package blasaccel registers netlib's cgo-backed BLAS implementation for
// gonum's mat.Eigen, used by the Roe solver's numeric eigendecomposition.
// Importing this package for its side effect is the only thing callers do
// with it; it exports nothing.
package blasaccel

/*
#cgo CFLAGS: -march=native -mavx -mavx2
#cgo LDFLAGS: -lopenblas -llapacke -lgfortran -lm -lpthread
#include <cblas.h>
#include <lapacke.h>
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("blasaccel: using netlib to accelerate BLAS")
}
