package pod

import "errors"

var (
	ErrPodNotFound = errors.New("pod not found")
	ErrPodExists   = errors.New("a pod with this name already exists")
	ErrPodInUse    = errors.New("pod still has members assigned")
)
