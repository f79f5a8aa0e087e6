// Package v1 contains the protobuf messages exchanged between the bridge
// and L2 programs over MQTT.
package v1

//go:generate protoc -I ../../../../proto --go_out=paths=source_relative:../.. trinket/v1/trinket.proto
