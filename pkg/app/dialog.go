package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/sidelist/pkg/collection"
)

func (s *Service) dialog() (Dialog, error) {
	if s.Dialog == nil {
		return nil, errors.New("app: no dialog configured")
	}
	return s.Dialog, nil
}

// ConfirmDeleteList asks before deleting a list. It reports whether the list
// was deleted.
func (s *Service) ConfirmDeleteList(ctx context.Context, list int) (bool, error) {
	name, err := s.ListName(list)
	if err != nil {
		return false, err
	}
	d, err := s.dialog()
	if err != nil {
		return false, err
	}
	ok, err := d.Confirm(ctx, fmt.Sprintf("Delete list %q?", name))
	if err != nil || !ok {
		return false, err
	}
	return true, s.DeleteList(ctx, list)
}

// PromptAddList asks for a name and appends a list.
func (s *Service) PromptAddList(ctx context.Context) (int, error) {
	d, err := s.dialog()
	if err != nil {
		return -1, err
	}
	name, ok, err := d.Prompt(ctx, "List name", "")
	if err != nil || !ok {
		return -1, err
	}
	return s.AddList(ctx, name)
}

// PromptAddItem asks for content and appends it to a list.
func (s *Service) PromptAddItem(ctx context.Context, list int) (int, error) {
	if _, err := s.ListName(list); err != nil {
		return -1, err
	}
	d, err := s.dialog()
	if err != nil {
		return -1, err
	}
	content, ok, err := d.Prompt(ctx, "Item content", "")
	if err != nil || !ok {
		return -1, err
	}
	return s.AddItem(ctx, list, content)
}

// PromptRenameList asks for a new name, starting from the current one.
func (s *Service) PromptRenameList(ctx context.Context, list int) (bool, error) {
	name, err := s.ListName(list)
	if err != nil {
		return false, err
	}
	d, err := s.dialog()
	if err != nil {
		return false, err
	}
	next, ok, err := d.Prompt(ctx, "List name", name)
	if err != nil || !ok {
		return false, err
	}
	return s.RenameList(ctx, list, next)
}

// PromptEditItem asks for new content. Clearing the text deletes the item.
func (s *Service) PromptEditItem(ctx context.Context, list, item int) (collection.EditResult, error) {
	content, err := s.ItemContent(list, item)
	if err != nil {
		return collection.EditNone, err
	}
	d, err := s.dialog()
	if err != nil {
		return collection.EditNone, err
	}
	next, ok, err := d.Prompt(ctx, "Item content (empty deletes)", content)
	if err != nil || !ok {
		return collection.EditNone, err
	}
	return s.EditItem(ctx, list, item, next)
}
