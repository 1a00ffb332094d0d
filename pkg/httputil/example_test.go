package httputil_test

import (
	"fmt"

	"github.com/matzehuels/mysportsfeeds/pkg/httputil"
)

func ExampleBasicAuth() {
	fmt.Println(httputil.BasicAuth("u", "p"))
	// Output:
	// Basic dTpw
}

func ExampleNewClient() {
	client := httputil.NewClient(httputil.Options{})
	fmt.Println("Timeout:", client.Timeout)
	// Output:
	// Timeout: 30s
}
