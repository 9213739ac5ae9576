package controllers

import "civiclens/store"

var civicStore *store.Store

// Init wires the shared store into the handler package.
func Init(s *store.Store) {
	civicStore = s
}
