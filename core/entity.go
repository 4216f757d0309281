package core

// Entity is an opaque world handle, zero is never issued
type Entity uint64
