package mimic_test

import (
	"fmt"

	"github.com/mimiclib/mimic"
)

func Example() {
	ctrl := mimic.NewController()
	reg := mimic.MustMake[Registry](ctrl)

	mimic.When(ctrl, reg.Lookup("datasource")).ThenReturn("BasicDataSource")
	mimic.When(ctrl, reg.Lookup("userstore")).ThenReturn("UserStore")

	decorator := newCachingRegistry(reg)
	fmt.Println(decorator.Lookup("datasource"))
	fmt.Println(decorator.Lookup("datasource"))
	fmt.Println(decorator.Lookup("userstore"))

	mimic.Verify(ctrl, reg, mimic.Times(1)).Lookup("datasource")
	mimic.Verify(ctrl, reg, mimic.Times(1)).Lookup("userstore")

	// Output:
	// BasicDataSource
	// BasicDataSource
	// UserStore
}
