// Package book defines the catalog record and the checks every record must
// pass before it is written.
//
// A Book is plain data. Persistence lives in internal/store and the
// interactive workflows in internal/inventory; neither is reachable from here.
//
// User input arrives as a Candidate (four raw strings). Candidate.Validate is
// the single gate between keyboard text and a storable Book:
//
//  1. ID and Qty parse as integers
//  2. ID and Qty are strictly positive
//  3. Title and Author are non-empty after trimming
//
// Rules short-circuit in that order and the first failure is reported as a
// *ValidationError carrying the exact message shown to the operator.
package book
