package gdnative

//go:generate go run ../cmd/gen_variant_code -o variant_auto.go
