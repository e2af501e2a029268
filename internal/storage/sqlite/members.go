package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// GetMember retrieves a member by name along with the IDs of their groups.
func (s *SQLiteStore) GetMember(ctx context.Context, name string) (*models.Member, error) {
	member := &models.Member{}
	err := s.db.QueryRowContext(ctx,
		"SELECT name, created_at FROM members WHERE name = ?",
		name,
	).Scan(&member.Name, &member.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT gm.group_id FROM group_members gm
		 JOIN expense_groups g ON g.id = gm.group_id
		 WHERE gm.member_name = ?
		 ORDER BY g.created_at, g.rowid`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get member groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var groupID string
		if err := rows.Scan(&groupID); err != nil {
			return nil, fmt.Errorf("failed to scan member group: %w", err)
		}
		member.GroupIDs = append(member.GroupIDs, groupID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member groups: %w", err)
	}

	return member, nil
}
