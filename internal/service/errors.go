package service

import "errors"

var (
	ErrEmptyObjectURL     = errors.New("artifact has no object url")
	ErrNoFreeFileName     = errors.New("no free file name in download directory")
	ErrServiceDown        = errors.New("steganography service is down")
	ErrServiceUnreachable = errors.New("steganography service is unreachable")
)
