// Package ship implements the Ship aggregate: an ordered list of container
// references bounded by two capacity caps.
//
// A ship refuses a container when it already holds MaxContainers
// containers, or when the container's load would push the aggregate cargo
// weight past MaxWeight. Insertion order is load order, and removing a
// container only drops the reference; the container itself is unchanged.
package ship
