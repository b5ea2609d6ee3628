/*
Package transform provides the generic transformation node: a node built from
an input record type, an output record type and a pure function between them.

Connectors are derived from the records' declared schemas:

  - one argument input per field of TIn, in declared order;
  - one output per field of TOut, in declared order;
  - unless WithoutOverrides is given, one override input per field of TOut.

Argument inputs are required before the node may run. Override inputs are
optional unless an edge feeds them; an override that holds a value at
evaluation time is converted to the output field type and replaces the
computed output field of the same identity. When TIn and TOut share a field
name the node exposes two inputs with that identity, told apart by
connector.Input.Override.
*/
package transform
