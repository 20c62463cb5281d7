package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ddiliberto123/threejs-project/internal/board"
)

func main() {
	display, err := board.LoadDisplayTable("content/display.json")
	if err != nil {
		log.Printf("display table: %v (using built-in defaults)", err)
		display = board.DefaultDisplayTable()
	}

	srv := newServer(display)

	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir("internal/web/static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))
	mux.HandleFunc("/stream", srv.handleStream)
	mux.HandleFunc("/qr", srv.handleShareQR)
	mux.HandleFunc("/", srv.handleIndex)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
