package main

import "fmt"

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("pgbridge init <name> <host> <port> <database> <username> [password]")
	fmt.Println("pgbridge switch <profile>")
	fmt.Println("pgbridge status")
	fmt.Println("pgbridge version")
	fmt.Println("pgbridge add <query-name> <sql>")
	fmt.Println("pgbridge list")
	fmt.Println("pgbridge query [--edit] [--copy] <saved-name | sql>")
	fmt.Println("pgbridge exec <sql>")
	fmt.Println("pgbridge edit")
	fmt.Println("pgbridge currval <sequence>")
}
