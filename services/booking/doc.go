// Package booking hosts the availability service: the orchestration layer
// that resolves a place's operating window and policy, reads the reservation
// snapshot, and runs the pure availability engine over it.
package booking
