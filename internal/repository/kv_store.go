package repository

import (
	"context"
	"encoding/json"
	"errors"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/model"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
)

const upsertRetries = 5

// KVStore keeps every record as a JSON value inside one redis hash per record
// kind, the same layout a browser keeps under its local storage keys.
type KVStore struct {
	Redis  *redis.Client
	prefix string
}

func NewKVStore(rdb *redis.Client, prefix string) *KVStore {
	if prefix == "" {
		prefix = "exam-quiz"
	}
	return &KVStore{Redis: rdb, prefix: prefix}
}

func (s *KVStore) key(kind string) string {
	return s.prefix + ":" + kind
}

func (s *KVStore) progressKey() string   { return s.key("progress") }
func (s *KVStore) dailyStatsKey() string { return s.key("daily_stats") }
func (s *KVStore) activityKey() string   { return s.key("daily_activity") }
func (s *KVStore) badgesKey() string     { return s.key("badges") }
func (s *KVStore) prefsKey() string      { return s.key("preferences") }

func activityField(date, examType string) string {
	return date + "|" + examType
}

func (s *KVStore) FindProgress(ctx context.Context, questionID int) (*model.QuestionProgress, error) {
	raw, err := s.Redis.HGet(ctx, s.progressKey(), strconv.Itoa(questionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find progress %d: %w", questionID, err)
	}

	var progress model.QuestionProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, fmt.Errorf("decode progress %d: %w", questionID, err)
	}
	return &progress, nil
}

func (s *KVStore) ListProgress(ctx context.Context) (map[int]model.QuestionProgress, error) {
	values, err := s.Redis.HGetAll(ctx, s.progressKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	all := make(map[int]model.QuestionProgress, len(values))
	for field, raw := range values {
		var progress model.QuestionProgress
		if err := json.Unmarshal([]byte(raw), &progress); err != nil {
			return nil, fmt.Errorf("decode progress %s: %w", field, err)
		}
		all[progress.QuestionID] = progress
	}
	return all, nil
}

// UpsertProgress runs the read-modify-write under WATCH so a concurrent
// writer makes the transaction retry instead of losing an increment.
func (s *KVStore) UpsertProgress(ctx context.Context, questionID int, isCorrect bool) (*model.QuestionProgress, error) {
	key := s.progressKey()
	field := strconv.Itoa(questionID)

	var stored model.QuestionProgress
	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, field).Bytes()
		switch {
		case err == redis.Nil:
			stored = model.NewQuestionProgress(questionID, isCorrect)
		case err != nil:
			return err
		default:
			stored = model.QuestionProgress{}
			if err := json.Unmarshal(raw, &stored); err != nil {
				return err
			}
			stored.Record(isCorrect)
		}

		data, err := json.Marshal(stored)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, field, data)
			return nil
		})
		return err
	}

	for i := 0; i < upsertRetries; i++ {
		err := s.Redis.Watch(ctx, txf, key)
		if err == nil {
			return &stored, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("upsert progress %d: %w", questionID, err)
	}
	return nil, fmt.Errorf("upsert progress %d: %w", questionID, redis.TxFailedErr)
}

func (s *KVStore) ListDailyStats(ctx context.Context) ([]model.DailyStat, error) {
	values, err := s.Redis.HGetAll(ctx, s.dailyStatsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list daily stats: %w", err)
	}

	stats := make([]model.DailyStat, 0, len(values))
	for date, raw := range values {
		var stat model.DailyStat
		if err := json.Unmarshal([]byte(raw), &stat); err != nil {
			return nil, fmt.Errorf("decode daily stat %s: %w", date, err)
		}
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })
	return stats, nil
}

func (s *KVStore) SaveDailyStat(ctx context.Context, stat model.DailyStat) error {
	data, err := json.Marshal(stat)
	if err != nil {
		return err
	}
	if err := s.Redis.HSet(ctx, s.dailyStatsKey(), stat.Date, data).Err(); err != nil {
		return fmt.Errorf("save daily stat %s: %w", stat.Date, err)
	}
	return nil
}

func (s *KVStore) DeleteDailyStats(ctx context.Context, dates []string) error {
	if len(dates) == 0 {
		return nil
	}
	if err := s.Redis.HDel(ctx, s.dailyStatsKey(), dates...).Err(); err != nil {
		return fmt.Errorf("delete daily stats: %w", err)
	}
	return nil
}

func (s *KVStore) FindActivity(ctx context.Context, date, examType string) (*model.DailyActivity, error) {
	raw, err := s.Redis.HGet(ctx, s.activityKey(), activityField(date, examType)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find activity %s/%s: %w", date, examType, err)
	}

	var activity model.DailyActivity
	if err := json.Unmarshal(raw, &activity); err != nil {
		return nil, fmt.Errorf("decode activity %s/%s: %w", date, examType, err)
	}
	return &activity, nil
}

func (s *KVStore) SaveActivity(ctx context.Context, activity *model.DailyActivity) error {
	data, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	field := activityField(activity.Date, activity.ExamType)
	if err := s.Redis.HSet(ctx, s.activityKey(), field, data).Err(); err != nil {
		return fmt.Errorf("save activity %s: %w", field, err)
	}
	return nil
}

func (s *KVStore) ListActivities(ctx context.Context) ([]model.DailyActivity, error) {
	values, err := s.Redis.HGetAll(ctx, s.activityKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	activities := make([]model.DailyActivity, 0, len(values))
	for field, raw := range values {
		var activity model.DailyActivity
		if err := json.Unmarshal([]byte(raw), &activity); err != nil {
			return nil, fmt.Errorf("decode activity %s: %w", field, err)
		}
		activities = append(activities, activity)
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Date != activities[j].Date {
			return activities[i].Date > activities[j].Date
		}
		return activities[i].ExamType < activities[j].ExamType
	})
	return activities, nil
}

func (s *KVStore) DeleteActivitiesBefore(ctx context.Context, cutoff string) error {
	fields, err := s.Redis.HKeys(ctx, s.activityKey()).Result()
	if err != nil {
		return fmt.Errorf("prune activities before %s: %w", cutoff, err)
	}

	var stale []string
	for _, field := range fields {
		date, _, _ := strings.Cut(field, "|")
		if date < cutoff {
			stale = append(stale, field)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	if err := s.Redis.HDel(ctx, s.activityKey(), stale...).Err(); err != nil {
		return fmt.Errorf("prune activities before %s: %w", cutoff, err)
	}
	return nil
}

func (s *KVStore) ListEarnedBadges(ctx context.Context) ([]model.EarnedBadge, error) {
	values, err := s.Redis.HGetAll(ctx, s.badgesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list earned badges: %w", err)
	}

	badges := make([]model.EarnedBadge, 0, len(values))
	for id, date := range values {
		badges = append(badges, model.EarnedBadge{BadgeID: id, AchievedDate: date})
	}
	sort.Slice(badges, func(i, j int) bool {
		if badges[i].AchievedDate != badges[j].AchievedDate {
			return badges[i].AchievedDate < badges[j].AchievedDate
		}
		return badges[i].BadgeID < badges[j].BadgeID
	})
	return badges, nil
}

func (s *KVStore) AddEarnedBadge(ctx context.Context, badgeID, achievedDate string) (bool, error) {
	added, err := s.Redis.HSetNX(ctx, s.badgesKey(), badgeID, achievedDate).Result()
	if err != nil {
		return false, fmt.Errorf("add earned badge %s: %w", badgeID, err)
	}
	return added, nil
}

func (s *KVStore) GetPreference(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.Redis.HGet(ctx, s.prefsKey(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preference %s: %w", key, err)
	}
	return raw, nil
}

func (s *KVStore) SetPreference(ctx context.Context, key string, value []byte) error {
	if err := s.Redis.HSet(ctx, s.prefsKey(), key, value).Err(); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) ClearAll(ctx context.Context) error {
	err := s.Redis.Del(ctx, s.progressKey(), s.dailyStatsKey(), s.activityKey()).Err()
	if err != nil {
		return fmt.Errorf("clear progress keys: %w", err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.Redis.Ping(ctx).Err()
}

func (s *KVStore) Backend() string {
	return config.ProgressBackendKV
}
