package handlers

import "social-downloader-go/services"

var downloader *services.Downloader

// Init wires the downloader used by the API handlers
func Init(d *services.Downloader) {
	downloader = d
}
