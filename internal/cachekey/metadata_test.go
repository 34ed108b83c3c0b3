package cachekey

import (
	"reflect"
	"testing"
)

func TestFlattenDeviceIDs_NoAssignment(t *testing.T) {
	if got := flattenDeviceIDs(nil); len(got) != 0 {
		t.Fatalf("missing assignment must flatten to an empty sequence, got %v", got)
	}
}

func TestFlattenDeviceIDs_ReplicaMajorCoreMinor(t *testing.T) {
	da := &DeviceAssignment{
		ComputationDevices: [][]int32{
			{0, 1},
			{2, 3},
			{4, 5},
		},
	}
	got := flattenDeviceIDs(da)
	want := []int32{0, 1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected flattening: got %v want %v", got, want)
	}
}

func TestFlattenDeviceIDs_RaggedReplicasPreserveOrder(t *testing.T) {
	da := &DeviceAssignment{
		ComputationDevices: [][]int32{
			{7},
			{3, 1},
		},
	}
	got := flattenDeviceIDs(da)
	want := []int32{7, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected flattening: got %v want %v", got, want)
	}
}
