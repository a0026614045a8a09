package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nightjarhq/nightjar/internal/logger"
	"github.com/nightjarhq/nightjar/internal/services"
)

// SQLiteStore implements every service store interface over database/sql.
type SQLiteStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewSQLiteStore(db *sql.DB, log *logger.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	if log == nil {
		log = logger.Nop()
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func boolToInt64(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func int64ToBool(v int64) bool { return v != 0 }

func encodeJSON(v any) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeStrings(ns sql.NullString) []string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil
	}
	return out
}

func decodeStringMap(ns sql.NullString) map[string]string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	out := map[string]string{}
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil
	}
	return out
}

func decodeConditional(ns sql.NullString) *services.ConditionalLogic {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var out services.ConditionalLogic
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil
	}
	return &out
}

func decodeGateways(ns sql.NullString) []services.GatewayType {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var out []services.GatewayType
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil
	}
	return out
}

// ---- users ----

const userColumns = "id, email, pass_hash, role, current_day, assessment_completed, created_at"

func (s *SQLiteStore) scanUser(row *sql.Row) (*services.User, error) {
	var u services.User
	var completed int64
	err := row.Scan(&u.ID, &u.Email, &u.PassHash, &u.Role, &u.CurrentDay, &completed, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.AssessmentCompleted = int64ToBool(completed)
	return &u, nil
}

func (s *SQLiteStore) GetUser(id string) (*services.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return s.scanUser(row)
}

func (s *SQLiteStore) FindUserByEmail(email string) (*services.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return s.scanUser(row)
}

func (s *SQLiteStore) AddUser(u *services.User) error {
	_, err := s.db.Exec(
		"INSERT INTO users (id, email, pass_hash, role, current_day, assessment_completed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, u.PassHash, u.Role, u.CurrentDay, boolToInt64(u.AssessmentCompleted), u.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) UpdateUserJourney(id string, currentDay int, completed bool) error {
	res, err := s.db.Exec(
		"UPDATE users SET current_day = ?, assessment_completed = ? WHERE id = ?",
		currentDay, boolToInt64(completed), id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return services.NewNotFoundError("user not found")
	}
	return nil
}

// ---- questions ----

const questionColumns = "id, text, pillar, tier, type, options, scale_min, scale_max, scale_min_label, scale_max_label, min_value, max_value, step, unit, default_value, help_text, required, grp, is_gateway, gateway_type, gateway_threshold, conditional"

func scanQuestion(scan func(dest ...any) error) (*services.Question, error) {
	var q services.Question
	var options, minLabel, maxLabel, unit, helpText, grp, gatewayType, conditional sql.NullString
	var scaleMin, scaleMax, minValue, maxValue, defaultValue sql.NullInt64
	var step, threshold sql.NullFloat64
	var required, isGateway int64
	err := scan(
		&q.ID, &q.Text, &q.Pillar, &q.Tier, &q.Type, &options,
		&scaleMin, &scaleMax, &minLabel, &maxLabel,
		&minValue, &maxValue, &step, &unit, &defaultValue, &helpText,
		&required, &grp, &isGateway, &gatewayType, &threshold, &conditional,
	)
	if err != nil {
		return nil, err
	}
	q.Options = decodeStrings(options)
	q.ScaleMin = int(scaleMin.Int64)
	q.ScaleMax = int(scaleMax.Int64)
	q.ScaleMinLabel = minLabel.String
	q.ScaleMaxLabel = maxLabel.String
	q.MinValue = int(minValue.Int64)
	q.MaxValue = int(maxValue.Int64)
	q.Step = step.Float64
	q.Unit = unit.String
	q.DefaultValue = int(defaultValue.Int64)
	q.HelpText = helpText.String
	q.Required = int64ToBool(required)
	q.Group = grp.String
	q.IsGateway = int64ToBool(isGateway)
	q.GatewayType = services.GatewayType(gatewayType.String)
	q.GatewayThreshold = threshold.Float64
	q.Conditional = decodeConditional(conditional)
	return &q, nil
}

func (s *SQLiteStore) GetQuestion(id string) (*services.Question, error) {
	row := s.db.QueryRow("SELECT "+questionColumns+" FROM questions WHERE id = ?", id)
	q, err := scanQuestion(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *SQLiteStore) ListQuestions() ([]*services.Question, error) {
	rows, err := s.db.Query("SELECT " + questionColumns + " FROM questions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*services.Question
	for rows.Next() {
		q, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) insertQuestion(tx *sql.Tx, q *services.Question) error {
	options, err := encodeJSON(nilIfEmptySlice(q.Options))
	if err != nil {
		return err
	}
	conditional, err := encodeJSON(orNil(q.Conditional))
	if err != nil {
		return err
	}
	var threshold sql.NullFloat64
	if q.GatewayThreshold != 0 {
		threshold = sql.NullFloat64{Float64: q.GatewayThreshold, Valid: true}
	}
	_, err = tx.Exec(
		"INSERT INTO questions ("+questionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		q.ID, q.Text, string(q.Pillar), string(q.Tier), string(q.Type), options,
		q.ScaleMin, q.ScaleMax, toNullString(q.ScaleMinLabel), toNullString(q.ScaleMaxLabel),
		q.MinValue, q.MaxValue, q.Step, toNullString(q.Unit), q.DefaultValue, toNullString(q.HelpText),
		boolToInt64(q.Required), toNullString(q.Group), boolToInt64(q.IsGateway),
		toNullString(string(q.GatewayType)), threshold, conditional,
	)
	return err
}

func nilIfEmptySlice(ss []string) any {
	if len(ss) == 0 {
		return nil
	}
	return ss
}

func orNil(c *services.ConditionalLogic) any {
	if c == nil {
		return nil
	}
	return c
}

// ---- modules ----

func (s *SQLiteStore) GetModule(id string) (*services.Module, error) {
	row := s.db.QueryRow("SELECT id, name, description, pillar, tier, estimated_minutes FROM modules WHERE id = ?", id)
	var m services.Module
	var desc sql.NullString
	err := row.Scan(&m.ID, &m.Name, &desc, &m.Pillar, &m.Tier, &m.EstimatedMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.Description = desc.String
	ids, err := s.listModuleQuestionIDs(m.ID)
	if err != nil {
		return nil, err
	}
	m.QuestionIDs = ids
	return &m, nil
}

func (s *SQLiteStore) listModuleQuestionIDs(moduleID string) ([]string, error) {
	rows, err := s.db.Query("SELECT question_id FROM module_questions WHERE module_id = ? ORDER BY order_index ASC", moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListModuleQuestions(moduleID string) ([]*services.Question, error) {
	rows, err := s.db.Query(
		"SELECT "+questionColumnsQ+" FROM module_questions mq JOIN questions q ON q.id = mq.question_id WHERE mq.module_id = ? ORDER BY mq.order_index ASC",
		moduleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*services.Question
	for rows.Next() {
		q, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

const questionColumnsQ = "q.id, q.text, q.pillar, q.tier, q.type, q.options, q.scale_min, q.scale_max, q.scale_min_label, q.scale_max_label, q.min_value, q.max_value, q.step, q.unit, q.default_value, q.help_text, q.required, q.grp, q.is_gateway, q.gateway_type, q.gateway_threshold, q.conditional"

// ---- day configurations ----

func (s *SQLiteStore) GetDayConfiguration(dayNumber int) (*services.DayConfiguration, error) {
	row := s.db.QueryRow("SELECT day_number, title, description, estimated_minutes, required_gateways FROM day_configurations WHERE day_number = ?", dayNumber)
	cfg, err := scanDayConfiguration(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ids, err := s.listDayModuleIDs(cfg.DayNumber)
	if err != nil {
		return nil, err
	}
	cfg.ModuleIDs = ids
	return cfg, nil
}

func scanDayConfiguration(scan func(dest ...any) error) (*services.DayConfiguration, error) {
	var cfg services.DayConfiguration
	var desc, gateways sql.NullString
	if err := scan(&cfg.DayNumber, &cfg.Title, &desc, &cfg.EstimatedMinutes, &gateways); err != nil {
		return nil, err
	}
	cfg.Description = desc.String
	cfg.RequiredGateways = decodeGateways(gateways)
	return &cfg, nil
}

func (s *SQLiteStore) ListDayConfigurations() ([]*services.DayConfiguration, error) {
	rows, err := s.db.Query("SELECT day_number, title, description, estimated_minutes, required_gateways FROM day_configurations ORDER BY day_number ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*services.DayConfiguration
	for rows.Next() {
		cfg, err := scanDayConfiguration(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, cfg := range out {
		ids, err := s.listDayModuleIDs(cfg.DayNumber)
		if err != nil {
			return nil, err
		}
		cfg.ModuleIDs = ids
	}
	return out, nil
}

func (s *SQLiteStore) listDayModuleIDs(dayNumber int) ([]string, error) {
	rows, err := s.db.Query("SELECT module_id FROM day_modules WHERE day_number = ? ORDER BY order_index ASC", dayNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) MaxDayNumber() (int, error) {
	row := s.db.QueryRow("SELECT COALESCE(MAX(day_number), 0) FROM day_configurations")
	var max int
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// ---- curation ----

// SetDayModules replaces the day's assignments wholesale: delete then
// reinsert with contiguous zero-based order under one transaction.
func (s *SQLiteStore) SetDayModules(dayNumber int, moduleIDs []string) error {
	return s.withTx(func(tx *sql.Tx) error {
		return setDayModulesTx(tx, dayNumber, moduleIDs)
	})
}

func setDayModulesTx(tx *sql.Tx, dayNumber int, moduleIDs []string) error {
	if _, err := tx.Exec("DELETE FROM day_modules WHERE day_number = ?", dayNumber); err != nil {
		return err
	}
	for i, id := range moduleIDs {
		if _, err := tx.Exec(
			"INSERT INTO day_modules (day_number, module_id, order_index) VALUES (?, ?, ?)",
			dayNumber, id, i,
		); err != nil {
			return err
		}
	}
	return nil
}

// ReorderDayModules validates inside the transaction that the submitted
// order is a total permutation of the current assignments before the
// delete-and-reinsert; otherwise nothing changes.
func (s *SQLiteStore) ReorderDayModules(dayNumber int, moduleIDs []string) error {
	return s.withTx(func(tx *sql.Tx) error {
		current, err := queryStringsTx(tx, "SELECT module_id FROM day_modules WHERE day_number = ? ORDER BY order_index ASC", dayNumber)
		if err != nil {
			return err
		}
		if !samePermutation(current, moduleIDs) {
			return services.ErrOrderMismatch
		}
		return setDayModulesTx(tx, dayNumber, moduleIDs)
	})
}

// ReorderModuleQuestions applies the same permutation rule to a module's
// question list.
func (s *SQLiteStore) ReorderModuleQuestions(moduleID string, questionIDs []string) error {
	return s.withTx(func(tx *sql.Tx) error {
		current, err := queryStringsTx(tx, "SELECT question_id FROM module_questions WHERE module_id = ? ORDER BY order_index ASC", moduleID)
		if err != nil {
			return err
		}
		if !samePermutation(current, questionIDs) {
			return services.ErrOrderMismatch
		}
		if _, err := tx.Exec("DELETE FROM module_questions WHERE module_id = ?", moduleID); err != nil {
			return err
		}
		for i, id := range questionIDs {
			if _, err := tx.Exec(
				"INSERT INTO module_questions (module_id, question_id, order_index) VALUES (?, ?, ?)",
				moduleID, id, i,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func queryStringsTx(tx *sql.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func samePermutation(current, submitted []string) bool {
	if len(current) != len(submitted) {
		return false
	}
	a := append([]string(nil), current...)
	b := append([]string(nil), submitted...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ---- responses ----

const responseColumns = "user_id, question_id, day_number, string_value, number_value, array_value, answered_at, answered_in_seconds"

func scanResponse(scan func(dest ...any) error) (*services.Response, error) {
	var r services.Response
	var stringValue, arrayValue sql.NullString
	var numberValue sql.NullFloat64
	err := scan(&r.UserID, &r.QuestionID, &r.DayNumber, &stringValue, &numberValue, &arrayValue, &r.AnsweredAt, &r.AnsweredInSeconds)
	if err != nil {
		return nil, err
	}
	if stringValue.Valid {
		v := stringValue.String
		r.StringValue = &v
	}
	if numberValue.Valid {
		v := numberValue.Float64
		r.NumberValue = &v
	}
	r.ArrayValue = decodeStrings(arrayValue)
	return &r, nil
}

func (s *SQLiteStore) UpsertResponse(r *services.Response) error {
	arrayValue, err := encodeJSON(nilIfEmptySlice(r.ArrayValue))
	if err != nil {
		return err
	}
	var stringValue sql.NullString
	if r.StringValue != nil {
		stringValue = sql.NullString{String: *r.StringValue, Valid: true}
	}
	_, err = s.db.Exec(
		`INSERT INTO responses (`+responseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, question_id, day_number) DO UPDATE SET
		   string_value = excluded.string_value,
		   number_value = excluded.number_value,
		   array_value = excluded.array_value,
		   answered_at = excluded.answered_at,
		   answered_in_seconds = excluded.answered_in_seconds`,
		r.UserID, r.QuestionID, r.DayNumber, stringValue, toNullFloat(r.NumberValue), arrayValue, r.AnsweredAt, r.AnsweredInSeconds,
	)
	return err
}

func (s *SQLiteStore) ListResponsesByUser(userID string) ([]*services.Response, error) {
	return s.queryResponses("SELECT "+responseColumns+" FROM responses WHERE user_id = ? ORDER BY day_number ASC, question_id ASC", userID)
}

func (s *SQLiteStore) ListResponsesByUserDay(userID string, dayNumber int) ([]*services.Response, error) {
	return s.queryResponses("SELECT "+responseColumns+" FROM responses WHERE user_id = ? AND day_number = ? ORDER BY question_id ASC", userID, dayNumber)
}

func (s *SQLiteStore) queryResponses(query string, args ...any) ([]*services.Response, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*services.Response
	for rows.Next() {
		r, err := scanResponse(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ---- gateway states ----

func (s *SQLiteStore) ListGatewayStates(userID string) ([]*services.GatewayState, error) {
	rows, err := s.db.Query(
		"SELECT user_id, gateway_type, triggered, triggered_at, last_evaluated_at, evaluation_data FROM gateway_states WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*services.GatewayState
	for rows.Next() {
		var st services.GatewayState
		var triggered int64
		var triggeredAt sql.NullTime
		var data sql.NullString
		if err := rows.Scan(&st.UserID, &st.GatewayType, &triggered, &triggeredAt, &st.LastEvaluatedAt, &data); err != nil {
			return nil, err
		}
		st.Triggered = int64ToBool(triggered)
		if triggeredAt.Valid {
			t := triggeredAt.Time
			st.TriggeredAt = &t
		}
		st.EvaluationData = decodeStringMap(data)
		out = append(out, &st)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveGatewayState(st *services.GatewayState) error {
	data, err := encodeJSON(nilIfEmptyMap(st.EvaluationData))
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO gateway_states (user_id, gateway_type, triggered, triggered_at, last_evaluated_at, evaluation_data) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, gateway_type) DO UPDATE SET
		   triggered = excluded.triggered,
		   triggered_at = excluded.triggered_at,
		   last_evaluated_at = excluded.last_evaluated_at,
		   evaluation_data = excluded.evaluation_data`,
		st.UserID, string(st.GatewayType), boolToInt64(st.Triggered), toNullTime(st.TriggeredAt), st.LastEvaluatedAt, data,
	)
	return err
}

func nilIfEmptyMap(m map[string]string) any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// ---- journey ----

func (s *SQLiteStore) MarkDayCompleted(userID string, dayNumber int, at time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO completed_days (user_id, day_number, completed_at) VALUES (?, ?, ?) ON CONFLICT(user_id, day_number) DO NOTHING",
		userID, dayNumber, at,
	)
	return err
}

func (s *SQLiteStore) ListCompletedDays(userID string) ([]int, error) {
	rows, err := s.db.Query("SELECT day_number FROM completed_days WHERE user_id = ? ORDER BY day_number ASC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ResetJourney wipes responses, gateway states and completed days and moves
// the pointer back to day 1 atomically.
func (s *SQLiteStore) ResetJourney(userID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM responses WHERE user_id = ?", userID); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM gateway_states WHERE user_id = ?", userID); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM completed_days WHERE user_id = ?", userID); err != nil {
			return err
		}
		res, err := tx.Exec("UPDATE users SET current_day = 1, assessment_completed = 0 WHERE id = ?", userID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return services.NewNotFoundError("user not found")
		}
		return nil
	})
}

// ---- seeding ----

// SeedCatalog loads the catalog into an empty database. A database that
// already holds questions is left untouched.
func (s *SQLiteStore) SeedCatalog(cat *services.Catalog) error {
	row := s.db.QueryRow("SELECT COUNT(1) FROM questions")
	var n int
	if err := row.Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.withTx(func(tx *sql.Tx) error {
		for _, q := range cat.Questions {
			if err := s.insertQuestion(tx, q); err != nil {
				return fmt.Errorf("seed question %s: %w", q.ID, err)
			}
		}
		for _, m := range cat.Modules {
			desc := toNullString(m.Description)
			if _, err := tx.Exec(
				"INSERT INTO modules (id, name, description, pillar, tier, estimated_minutes) VALUES (?, ?, ?, ?, ?, ?)",
				m.ID, m.Name, desc, string(m.Pillar), string(m.Tier), m.EstimatedMinutes,
			); err != nil {
				return fmt.Errorf("seed module %s: %w", m.ID, err)
			}
			for i, qid := range m.QuestionIDs {
				if _, err := tx.Exec(
					"INSERT INTO module_questions (module_id, question_id, order_index) VALUES (?, ?, ?)",
					m.ID, qid, i,
				); err != nil {
					return fmt.Errorf("seed module %s question %s: %w", m.ID, qid, err)
				}
			}
		}
		for _, d := range cat.Days {
			gateways, err := encodeJSON(nilIfEmptyGateways(d.RequiredGateways))
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				"INSERT INTO day_configurations (day_number, title, description, estimated_minutes, required_gateways) VALUES (?, ?, ?, ?, ?)",
				d.DayNumber, d.Title, toNullString(d.Description), d.EstimatedMinutes, gateways,
			); err != nil {
				return fmt.Errorf("seed day %d: %w", d.DayNumber, err)
			}
			if err := setDayModulesTx(tx, d.DayNumber, d.ModuleIDs); err != nil {
				return fmt.Errorf("seed day %d modules: %w", d.DayNumber, err)
			}
		}
		return nil
	})
}

func nilIfEmptyGateways(gs []services.GatewayType) any {
	if len(gs) == 0 {
		return nil
	}
	return gs
}

func (s *SQLiteStore) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}
