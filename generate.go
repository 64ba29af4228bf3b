package uz

//go:generate go run ./cmd/uzgen --config uzgen.yaml
