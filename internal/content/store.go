// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content

import "context"

// Repository is the relational store of one content table, keyed by id.
//
// Get, Update and Delete return dberr.ErrNotFound when no row has the id.
// Update and Upsert only touch the columns present in the given record.
type Repository interface {
	List(context context.Context) ([]Record, error)
	Get(context context.Context, id string) (Record, error)
	Insert(context context.Context, record Record) (Record, error)
	Update(context context.Context, id string, patch Record) (Record, error)
	Upsert(context context.Context, id string, record Record) (Record, error)
	Delete(context context.Context, id string) error
}
