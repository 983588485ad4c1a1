//go:build integration_test || all_tests

package test

// initSQL mirrors sql/schema.sql
const initSQL = `
CREATE TABLE public.players
(
    id   SERIAL PRIMARY KEY,
    name VARCHAR NOT NULL
);

CREATE TABLE public.physical_log
(
    id          SERIAL PRIMARY KEY,
    player_id   INTEGER          NOT NULL REFERENCES public.players (id) ON DELETE CASCADE,
    date        VARCHAR(10)      NOT NULL,
    height      DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (height >= 0),
    weight      DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (weight >= 0),
    run50m      VARCHAR          NOT NULL DEFAULT '',
    vision      VARCHAR          NOT NULL DEFAULT '',
    jump        VARCHAR          NOT NULL DEFAULT '',
    situp       VARCHAR          NOT NULL DEFAULT '',
    flexibility VARCHAR          NOT NULL DEFAULT ''
);
CREATE INDEX ix_physical_log_player_date ON public.physical_log (player_id, date);

CREATE TABLE public.skill_log
(
    id        SERIAL PRIMARY KEY,
    player_id INTEGER     NOT NULL REFERENCES public.players (id) ON DELETE CASCADE,
    date      VARCHAR(10) NOT NULL,
    dribble   INTEGER     NOT NULL DEFAULT 0,
    shoot     INTEGER     NOT NULL DEFAULT 0,
    pass      INTEGER     NOT NULL DEFAULT 0,
    defense   INTEGER     NOT NULL DEFAULT 0,
    tactic    INTEGER     NOT NULL DEFAULT 0,
    comment   VARCHAR     NOT NULL DEFAULT ''
);
CREATE INDEX ix_skill_log_player_date ON public.skill_log (player_id, date);

CREATE TABLE public.match_log
(
    id        SERIAL PRIMARY KEY,
    player_id INTEGER     NOT NULL REFERENCES public.players (id) ON DELETE CASCADE,
    date      VARCHAR(10) NOT NULL,
    opponent  VARCHAR     NOT NULL DEFAULT '',
    result    VARCHAR     NOT NULL DEFAULT '',
    score     VARCHAR     NOT NULL DEFAULT '',
    status    VARCHAR(4)  NOT NULL CHECK (status IN ('win', 'draw', 'lose')),
    note      VARCHAR     NOT NULL DEFAULT ''
);
CREATE INDEX ix_match_log_player_date ON public.match_log (player_id, date);

CREATE TABLE public.practice_log
(
    id          SERIAL PRIMARY KEY,
    player_id   INTEGER     NOT NULL REFERENCES public.players (id) ON DELETE CASCADE,
    date        VARCHAR(10) NOT NULL,
    duration    VARCHAR     NOT NULL DEFAULT '',
    title       VARCHAR     NOT NULL DEFAULT '',
    description VARCHAR     NOT NULL DEFAULT ''
);
CREATE INDEX ix_practice_log_player_date ON public.practice_log (player_id, date);
`
