// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking implements the accommodation-ranking core: rebuilding one
user's personal order from saved records, single-element reordering, and the
group-wide Borda-count aggregation.

All functions are pure transforms over slices; persistence belongs to the
store package and presentation to the handlers.

# Personal order

MergeOrder guarantees that every current accommodation appears exactly once:
previously ranked items keep their saved relative order, dangling records
(accommodation deleted after the save) are dropped without error, and items
that appeared after the user's last save land at the bottom.

Move is the drag-and-drop primitive: remove the element at one index and
reinsert it at another, leaving every other relative order untouched.

# Group aggregation

Aggregate scores each record N - position + 1 where N is the size of the
current accommodation set (first place is worth N, last place 1), sums across
all users, and counts distinct voters per accommodation. Ties keep the
authoritative set's order via a stable sort. Partial ballots are fine: not
every user ranks every accommodation.
*/
package ranking
