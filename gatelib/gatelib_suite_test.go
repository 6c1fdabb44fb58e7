package gatelib_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGatelib(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gatelib Suite")
}
