// Command richmail validates, renders and sends rich-text email messages.
package main

func main() {
	Execute()
}
